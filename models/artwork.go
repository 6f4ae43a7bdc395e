package models

// ArtworkResult is the output of one AI generation pass, ready to be merged
// into the request document.
type ArtworkResult struct {
	Model            string      `bson:"model" json:"model"`
	ImageURL         string      `bson:"image_url" json:"image_url"`
	IPFSHash         string      `bson:"ipfs_hash" json:"ipfs_hash"`
	TokenURI         string      `bson:"token_uri" json:"token_uri"`
	ProcessingTimeMs int64       `bson:"processing_time_ms" json:"processing_time_ms"`
	Metadata         NFTMetadata `bson:"metadata" json:"metadata"`
}
