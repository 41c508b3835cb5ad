// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/input"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/status"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/keymap"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/messages"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/styles"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// unavailableText replaces the transcript when no assistant is configured.
const unavailableText = "The assistant is not configured. Set TOGETHER_API_KEY or run " +
	"'foodiespot settings set llm.api_key <key>' and restart."

// entry is one rendered message of the transcript.
type entry struct {
	user bool
	text string
}

// View is the chat screen: transcript, input and status bar.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	assistant driving.AssistantService
	ctx       context.Context

	welcome    string
	transcript []entry

	input    *input.ChatInput
	viewport viewport.Model
	status   *status.Bar

	// next and stop drive the reply currently being streamed.
	next func() (string, error, bool)
	stop func()

	width  int
	height int
}

// NewView creates a new chat view. assistant may be nil, in which case the
// view explains how to configure one.
func NewView(s *styles.Styles, assistant driving.AssistantService, welcome string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	keys := keymap.DefaultKeyMap()
	bar := status.NewBar(s)
	bar.SetBindings(keys.ChatHelp())

	v := &View{
		styles:    s,
		keys:      keys,
		assistant: assistant,
		ctx:       context.Background(),
		welcome:   welcome,
		input:     input.NewChatInput(s),
		viewport:  viewport.New(80, 18),
		status:    bar,
		width:     80,
		height:    24,
	}
	v.refresh()
	return v
}

// SetContext sets the context used for assistant calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the chat view.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ReplyFragment:
		v.appendReply(msg.Text)
		return v, v.pull()

	case messages.ReplyFinished:
		v.finish(msg.Err)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.ScrollUp), keymap.Matches(keyStr, v.keys.ScrollDown):
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd

	case keymap.Matches(keyStr, v.keys.Reset):
		return v, v.reset()

	case keymap.Matches(keyStr, v.keys.Send):
		text := strings.TrimSpace(v.input.Value())
		if text == "" || v.Busy() || v.assistant == nil {
			return v, nil
		}
		v.input.Reset()
		return v, v.submit(text)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit records the guest's message and starts streaming the reply.
func (v *View) submit(text string) tea.Cmd {
	v.transcript = append(v.transcript, entry{user: true, text: text}, entry{})
	v.next, v.stop = iter.Pull2(v.assistant.Respond(v.ctx, text))
	v.status.SetState(status.StateThinking)
	v.status.SetMessage("")
	v.refresh()
	return v.pull()
}

// pull fetches the next fragment. Only one pull is in flight at a time.
func (v *View) pull() tea.Cmd {
	next := v.next
	if next == nil {
		return nil
	}
	return func() tea.Msg {
		fragment, err, ok := next()
		if !ok {
			return messages.ReplyFinished{}
		}
		if err != nil {
			return messages.ReplyFinished{Err: err}
		}
		return messages.ReplyFragment{Text: fragment}
	}
}

func (v *View) appendReply(text string) {
	if len(v.transcript) == 0 || v.transcript[len(v.transcript)-1].user {
		v.transcript = append(v.transcript, entry{})
	}
	v.transcript[len(v.transcript)-1].text += text
	v.refresh()
}

func (v *View) finish(err error) {
	if v.stop != nil {
		v.stop()
	}
	v.next, v.stop = nil, nil

	if err != nil {
		last := len(v.transcript) - 1
		if last >= 0 && !v.transcript[last].user && v.transcript[last].text == "" {
			v.transcript = v.transcript[:last]
		}
		v.status.SetState(status.StateError)
		v.status.SetMessage(err.Error())
	} else {
		v.status.Clear()
	}
	v.refresh()
}

// reset clears the conversation. It is ignored while a reply is streaming.
func (v *View) reset() tea.Cmd {
	if v.Busy() {
		return nil
	}
	if v.assistant != nil {
		v.assistant.Reset()
	}
	v.transcript = nil
	v.input.Reset()
	v.status.Clear()
	v.status.SetMessage("Started a new conversation")
	v.refresh()
	return func() tea.Msg { return messages.ConversationReset{} }
}

// refresh re-renders the transcript into the viewport.
func (v *View) refresh() {
	v.viewport.SetContent(v.renderTranscript())
	v.viewport.GotoBottom()
}

func (v *View) renderTranscript() string {
	wrap := lipgloss.NewStyle().Width(max(v.width-4, 20))

	if v.assistant == nil {
		return wrap.Render(v.styles.Error.Render(unavailableText))
	}

	blocks := make([]string, 0, len(v.transcript)+1)
	if v.welcome != "" {
		blocks = append(blocks, v.styles.AssistantLabel.Render("Assistant:")+"\n"+wrap.Render(v.welcome))
	}
	for _, e := range v.transcript {
		if e.user {
			blocks = append(blocks, v.styles.UserLabel.Render("You:")+"\n"+wrap.Render(e.text))
			continue
		}
		text := e.text
		if text == "" {
			text = v.styles.Muted.Render("...")
		}
		blocks = append(blocks, v.styles.AssistantLabel.Render("Assistant:")+"\n"+wrap.Render(text))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the chat screen.
func (v *View) View() string {
	title := v.styles.Title.Render("FoodieSpot Assistant")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		v.viewport.View(),
		v.input.View(),
		v.status.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	// Title, input box and status bar take six rows
	v.viewport.Width = width
	v.viewport.Height = max(height-6, 3)
	v.input.SetWidth(width)
	v.status.SetWidth(width)
	v.refresh()
}

// Busy reports whether a reply is streaming.
func (v *View) Busy() bool {
	return v.next != nil
}

// Transcript returns the rendered messages as plain text, guest lines
// prefixed with "You: " and assistant lines with "Assistant: ".
func (v *View) Transcript() []string {
	out := make([]string, 0, len(v.transcript))
	for _, e := range v.transcript {
		if e.user {
			out = append(out, "You: "+e.text)
		} else {
			out = append(out, "Assistant: "+e.text)
		}
	}
	return out
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
