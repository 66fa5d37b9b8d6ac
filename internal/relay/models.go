package relay

// Kind identifies which of the three relay requests is being served.
type Kind int

const (
	KindImagePrompt Kind = iota
	KindImageTitle
	KindTextQuestion
)

func (k Kind) String() string {
	switch k {
	case KindImagePrompt:
		return "image_prompt"
	case KindImageTitle:
		return "image_title"
	case KindTextQuestion:
		return "text_question"
	default:
		return "unknown"
	}
}

// ChatRequest represents an OpenAI-compatible chat completion request
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// ChatMessage represents a single role-tagged message. Content is either a
// string or a []ContentPart.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart represents one element of a multi-part message content
type ContentPart struct {
	Type     string    `json:"type"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL represents an image reference, here always a data URL
type ImageURL struct {
	URL string `json:"url"`
}

func systemMessage(instruction string) ChatMessage {
	return ChatMessage{Role: "system", Content: instruction}
}

func textMessage(text string) ChatMessage {
	return ChatMessage{Role: "user", Content: text}
}

func imageMessage(image []byte) ChatMessage {
	return ChatMessage{
		Role: "user",
		Content: []ContentPart{
			{Type: "image_url", ImageURL: &ImageURL{URL: EncodeDataURL(image)}},
		},
	}
}
