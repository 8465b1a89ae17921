package huggingface

import "context"

// IImageGenerator generates images from text prompts.
// Implementations are safe for concurrent use.
type IImageGenerator interface {
	TextToImage(ctx context.Context, prompt string, seed int64) ([]byte, error)
}
