package ports

import "context"

// AIProvider is the narrow interface to the third-party generative-AI
// service. Prompt construction and wire format live entirely behind it.
type AIProvider interface {
	// Generate answers a free-form chat prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// LabelImage returns descriptive labels for an image reachable at imageURL.
	LabelImage(ctx context.Context, imageURL string) ([]string, error)
	// Transcribe converts the audio file at audioURL to text.
	Transcribe(ctx context.Context, audioURL, mimeType string) (string, error)
}

// LabelJob is a unit of asynchronous image-labeling work.
type LabelJob struct {
	ImageID  string
	ImageURL string
}

// AIService fronts the provider with caching and the async labeling pipeline.
type AIService interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Transcribe(ctx context.Context, audioURL, mimeType string) (string, error)
	// ProcessLabelJob is invoked by the queue workers, never by handlers.
	ProcessLabelJob(ctx context.Context, job LabelJob) error
}
