package ai

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/drdwitte/Fabritius-NG/internal/config"
)

// visionPrompt asks the model for the kind of description the collection's
// stored captions were generated with, so query captions embed close to them.
const visionPrompt = `Analyze the given painting and generate a detailed description.
Write a concise but complete summary (200-300 words) covering: the overall scene,
the main figures and their poses, the atmosphere and dominant colors, the
composition, any historical, religious or mythological context, and the key
themes represented visually or symbolically. Then list all notable subjects and
significant objects with their symbolic roles, and the abstract concepts the
painting expresses. Respond with the description only.`

// OpenAIEmbedder implements Embedder over an OpenAI-compatible embeddings API.
type OpenAIEmbedder struct {
	embedder embeddings.Embedder
}

func NewOpenAIEmbedder(cfg config.OpenAIConfig) (*OpenAIEmbedder, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &OpenAIEmbedder{embedder: embedder}, nil
}

func (e *OpenAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		log.WithError(err).Error("embedding generation failed")
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, nil
	}
	return vectors[0], nil
}

func (e *OpenAIEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		log.WithError(err).WithField("count", len(texts)).Error("batch embedding failed")
		return nil, err
	}
	return vectors, nil
}

// OpenAICaptioner implements Captioner with a vision-capable chat model.
type OpenAICaptioner struct {
	model llms.Model
}

func NewOpenAICaptioner(cfg config.OpenAIConfig) (*OpenAICaptioner, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return &OpenAICaptioner{model: client}, nil
}

func (c *OpenAICaptioner) CaptionImage(ctx context.Context, imageURL string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(visionPrompt),
				llms.ImageURLPart(imageURL),
			},
		},
	}

	response, err := c.model.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		log.WithError(err).Error("vision caption failed")
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}
