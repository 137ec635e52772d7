package status

import (
	"errors"
	"io"

	"github.com/bnema/nlu-trainer/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrBoardNotReturned = errors.New("status board program returned a foreign model")

type drawBoardMsg struct{}

// board is a one-shot bubbletea program: it draws the grouped sessions on
// the first message and quits.
type board struct {
	groups   []botGroup
	sessions int
	opts     RenderOptions
	styles   styles
	frame    string
}

func newBoard(sessions []domain.TrainingSession, opts RenderOptions) board {
	return board{
		groups:   groupByBot(sessions),
		sessions: len(sessions),
		opts:     opts,
		styles:   newStyles(),
	}
}

func (b board) Init() tea.Cmd {
	return func() tea.Msg { return drawBoardMsg{} }
}

func (b board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawBoardMsg); !ok {
		return b, nil
	}
	b.frame = renderView(b.groups, b.sessions, b.opts, b.styles)
	return b, tea.Quit
}

func (b board) View() string {
	return b.frame
}

// Render draws the training sessions grouped by bot, bots and languages in
// lexical order. Errored sessions carry their error and active sessions idle
// for longer than opts.StaleAfter are flagged.
func Render(sessions []domain.TrainingSession, opts RenderOptions) (string, error) {
	program := tea.NewProgram(
		newBoard(sessions, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	drawn, ok := final.(board)
	if !ok {
		return "", ErrBoardNotReturned
	}
	return drawn.View(), nil
}
