package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the reservation assistant",
	Long: `Start a conversation with the FoodieSpot assistant in the terminal.

Type a message and press Enter. Replies stream as they are generated.

Commands:
  /reset  Start a new conversation
  exit    Leave the chat (also: quit, Ctrl+D)`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send one message to the assistant",
	Long: `Send a single message to the assistant and print the reply.

Examples:
  foodiespot ask "Which North Indian places are in Downtown?"
  foodiespot ask "Book Coastal Spice for 4 on 2025-05-28 at 19:00 under Ravi"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in)

	if welcomeMessage != "" {
		fmt.Fprintf(out, "Assistant: %s\n", welcomeMessage)
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "You: ")
		}
		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(message) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "/reset":
			assistant.Reset()
			fmt.Fprintln(out, "Started a new conversation.")
			continue
		}

		if err := streamReply(ctx, out, assistant.Respond(ctx, message)); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	message := strings.Join(args, " ")
	return streamReply(ctx, cmd.OutOrStdout(), assistant.Respond(ctx, message))
}

// streamReply prints reply fragments as they arrive, prefixed once with
// "Assistant: " and ended with a newline.
func streamReply(ctx context.Context, out io.Writer, reply iter.Seq2[string, error]) error {
	started := false
	for fragment, err := range reply {
		if err != nil {
			if started {
				fmt.Fprintln(out)
			}
			return err
		}
		if ctx.Err() != nil {
			break
		}
		if !started {
			fmt.Fprint(out, "Assistant: ")
			started = true
		}
		fmt.Fprint(out, fragment)
	}
	if started {
		fmt.Fprintln(out)
	}
	return ctx.Err()
}
