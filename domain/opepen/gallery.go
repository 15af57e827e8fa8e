package opepen

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

const KeyUnrevealed = "Unrevealed"

// Group is one collapsible section of the gallery
type Group struct {
	Key     string          `json:"key"`
	SetName string          `json:"setName"`
	Members []TokenMetadata `json:"members"`
}

func (g Group) Title() string {
	if g.Key == KeyUnrevealed {
		return fmt.Sprintf("%s (%d)", KeyUnrevealed, len(g.Members))
	}
	return fmt.Sprintf("%s - %s (%d)", g.Key, g.SetName, len(g.Members))
}

// Gallery is what the dashboard renders. Its zero value is the loading state.
type Gallery struct {
	State  State           `json:"state"`
	Error  string          `json:"error,omitempty"`
	Total  int             `json:"total"`
	Supply int             `json:"supply"`
	Tokens []TokenMetadata `json:"tokens"`
	Groups []Group         `json:"groups"`
}

func (g *Gallery) Fail(msg string) *Gallery {
	g.State = StateError
	g.Error = msg
	return g
}

// Percentage is Total over Supply in percent, two decimals
func (g Gallery) Percentage() string {
	if g.Supply <= 0 {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromInt(int64(g.Total)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(g.Supply))).
		StringFixed(2)
}

// Progress renders "<burned>/<supply> (<pct>%)"
func (g Gallery) Progress() string {
	return fmt.Sprintf("%d/%d (%s%%)", g.Total, g.Supply, g.Percentage())
}
