package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameState:
		o.printGameState(v)
	case MoveResult:
		o.printMoveResult(v)
	case SuggestionResult:
		o.printSuggestionResult(v)
	case Simulation:
		o.printSimulation(v)
	case []GameSummary:
		o.printSummaries(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// AuthResult combines session and token
type AuthResult struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

// Line response type
type Line struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// Move response type
type Move struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Round int    `json:"round"`
	Side  string `json:"side"`
}

// GameState response type
type GameState struct {
	Board          [][]string `json:"board"`
	Phase          string     `json:"phase"`
	Round          int        `json:"round"`
	MaxRounds      int        `json:"max_rounds"`
	Progress       float64    `json:"progress"`
	RemainingCells int        `json:"remaining_cells"`
	CompletedLines []Line     `json:"completed_lines"`
	Moves          []Move     `json:"moves"`
}

// MoveResult response type
type MoveResult struct {
	Move  *Move     `json:"move"`
	State GameState `json:"state"`
}

// ScoredMove response type
type ScoredMove struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Suggestion response type
type Suggestion struct {
	Best         ScoredMove   `json:"best"`
	Alternatives []ScoredMove `json:"alternatives"`
	Confidence   string       `json:"confidence"`
}

// SuggestionResult wraps the suggestion endpoint's response
type SuggestionResult struct {
	Suggestion *Suggestion `json:"suggestion"`
}

// Simulation response type
type Simulation struct {
	Board          [][]string `json:"board"`
	CompletedLines []Line     `json:"completed_lines"`
}

// GameSummary response type
type GameSummary struct {
	ID             string     `json:"id"`
	Rounds         int        `json:"rounds"`
	CompletedLines int        `json:"completed_lines"`
	Board          [][]string `json:"board"`
	PlayerMoves    int        `json:"player_moves"`
	ComputerMoves  int        `json:"computer_moves"`
	FinishedAt     string     `json:"finished_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s (%s)\n", s.DisplayName, s.ID)
	fmt.Printf("Created: %s\n", s.CreatedAt)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printSession(a.Session)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Round: %d/%d\n", g.Round, g.MaxRounds)
	fmt.Printf("Progress: %.0f%%\n", g.Progress)
	fmt.Printf("Remaining Cells: %d\n", g.RemainingCells)

	fmt.Println("\nBoard:")
	o.printBoard(g.Board)

	if len(g.CompletedLines) > 0 {
		fmt.Printf("\nCompleted Lines (%d):\n", len(g.CompletedLines))
		for _, l := range g.CompletedLines {
			fmt.Printf("  - %s\n", lineLabel(l))
		}
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	if m.Move != nil {
		fmt.Printf("Placed %s mark at (%d, %d), round %d\n", m.Move.Side, m.Move.Row+1, m.Move.Col+1, m.Move.Round)
	}
	fmt.Println()
	o.printGameState(m.State)
}

func (o *Output) printSuggestionResult(s SuggestionResult) {
	if s.Suggestion == nil {
		fmt.Println("No suggestion available")
		return
	}

	best := s.Suggestion.Best
	fmt.Printf("Best Move: (%d, %d) - score %.1f\n", best.Row+1, best.Col+1, best.Score)
	if best.Label != "" {
		fmt.Printf("Position: %s\n", best.Label)
	}
	fmt.Printf("Confidence: %s\n", s.Suggestion.Confidence)

	if len(s.Suggestion.Alternatives) > 0 {
		fmt.Println("Alternatives:")
		for _, alt := range s.Suggestion.Alternatives {
			fmt.Printf("  - (%d, %d) - score %.1f\n", alt.Row+1, alt.Col+1, alt.Score)
		}
	}
}

func (o *Output) printSimulation(s Simulation) {
	fmt.Println("Simulated Board:")
	o.printBoard(s.Board)

	if len(s.CompletedLines) > 0 {
		fmt.Printf("\nWould Complete (%d):\n", len(s.CompletedLines))
		for _, l := range s.CompletedLines {
			fmt.Printf("  - %s\n", lineLabel(l))
		}
	}
}

func (o *Output) printSummaries(summaries []GameSummary) {
	if len(summaries) == 0 {
		fmt.Println("No completed games")
		return
	}

	fmt.Printf("Completed Games (%d):\n", len(summaries))
	for _, s := range summaries {
		fmt.Printf("  %s - %d rounds, %d lines, %d player / %d computer moves, finished %s\n",
			s.ID, s.Rounds, s.CompletedLines, s.PlayerMoves, s.ComputerMoves, s.FinishedAt)
	}
}

func (o *Output) printBoard(cells [][]string) {
	if len(cells) == 0 {
		return
	}

	size := len(cells)

	// Print column headers (1-based, matching server error messages)
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf(" %d ", col+1)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf(" %d |", row+1)
		for col := 0; col < size; col++ {
			cell := cells[row][col]
			if cell == "" {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %s ", cell)
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func lineLabel(l Line) string {
	switch l.Kind {
	case "horizontal":
		return fmt.Sprintf("row %d", l.Index+1)
	case "vertical":
		return fmt.Sprintf("column %d", l.Index+1)
	case "diagonal_main":
		return "main diagonal"
	case "diagonal_anti":
		return "anti diagonal"
	default:
		return l.Kind
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
