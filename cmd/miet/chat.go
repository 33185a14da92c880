package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	miet "github.com/gipersonic/miet"
	"github.com/gipersonic/miet/internal/presentation/tui"
	"github.com/gipersonic/miet/pkg/domain"
)

// consoleNotifier prints operator-channel traffic to the terminal, so a
// single-process chat session shows both sides of the conversation.
type consoleNotifier struct{}

func (consoleNotifier) Notify(ctx context.Context, text, replyUser string) error {
	fmt.Printf("\n[operator channel] %s\n", text)
	if replyUser != "" {
		fmt.Printf("[operator channel] reply goes to: %s\n", replyUser)
	}
	return nil
}

type consoleMessenger struct{}

func (consoleMessenger) SendTo(ctx context.Context, userID, text string) error {
	fmt.Printf("\n[to %s] %s\n", userID, text)
	return nil
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session in the terminal",
	Long:  `Runs the engine locally with in-memory stores and a REPL. Operator notifications are echoed to the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		eng, _, err := buildEngine(cmd,
			miet.WithNotifier(consoleNotifier{}),
			miet.WithMessenger(consoleMessenger{}),
		)
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}

		tui.PrintBanner(miet.Version)
		render := tui.NewRenderer()
		ctx := cmd.Context()

		show := func(r domain.Render) {
			fmt.Println(render(r.Text))
			if choices := tui.FormatChoices(r.Choices); choices != "" {
				fmt.Println(choices)
			}
		}

		// Open at the catalog root.
		first, err := eng.Handle(ctx, domain.Event{UserID: userID, Text: domain.KeywordStart})
		if err != nil {
			return err
		}
		show(first)

		reader := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !reader.Scan() {
				break
			}
			input := strings.TrimSpace(reader.Text())
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				fmt.Println("Bye!")
				break
			}

			r, err := eng.Handle(ctx, domain.Event{UserID: userID, Text: input})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			show(r)
		}
		return reader.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().String("user", "local", "User id for the chat session")
}
