package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vetfinder-hk/vetfinder/internal/assistant"
	"github.com/vetfinder-hk/vetfinder/internal/i18n"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
)

var chatPetType string

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the AI assistant about your pet's situation",
	Long: `Chat sends your description through intent extraction and ranking, then
prints the assistant's reply with the recommended vets. Without an
OPENAI_API_KEY or GEMINI_API_KEY in the environment the reply falls back to a
deterministic template.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatPetType, "pet", "p", "", "pet type (e.g. dog, cat)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, logger, st, err := loadEnvironment()
	if err != nil {
		return err
	}

	completer := assistant.SelectCompleter(assistant.ProviderCredentials{
		OpenAI: assistant.OpenAIConfig{
			APIKey:      cfg.AI.OpenAI.APIKey,
			Model:       cfg.AI.OpenAI.Model,
			BaseURL:     cfg.AI.OpenAI.BaseURL,
			Temperature: cfg.AI.OpenAI.Temperature,
			Timeout:     cfg.AI.OpenAI.Timeout,
		},
		Gemini: assistant.GeminiConfig{
			APIKey:  cfg.AI.Gemini.APIKey,
			Model:   cfg.AI.Gemini.Model,
			BaseURL: cfg.AI.Gemini.BaseURL,
			Timeout: cfg.AI.Gemini.Timeout,
		},
	}, logger)

	ranker := recommend.NewRanker(st, logger)
	service := assistant.NewService(
		assistant.NewIntentExtractor(completer, logger),
		assistant.NewResponder(completer, logger),
		ranker,
		logger,
		cfg.Recommend.Limit,
	)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Thinking..."
	if completer != nil {
		s.Start()
	}

	resp, err := service.Chat(cmd.Context(), assistant.ChatRequest{
		Message:  strings.Join(args, " "),
		PetType:  chatPetType,
		Language: language,
	})
	s.Stop()
	if err != nil {
		return err
	}

	color.Cyan(i18n.T("assistant_reply", language))
	fmt.Println(resp.Text)
	fmt.Println()
	printRecommendations(resp.Recommendations)
	return nil
}
