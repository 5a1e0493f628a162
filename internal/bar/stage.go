package bar

// Stage is the advisory conversational step a session is in. The engine
// never enforces it: every operation is valid from any stage, and the
// dialogue layer decides which operations it offers the customer.
type Stage string

const (
	StageGreeting    Stage = "greeting"
	StageTakingOrder Stage = "taking_order"
	StageClosingTab  Stage = "closing_tab"
	StageTabClosed   Stage = "tab_closed"
)

// Operation names as exposed to the dialogue layer.
const (
	OpAddDrink       = "add_drink"
	OpRemoveDrink    = "remove_drink"
	OpReviewTab      = "review_tab"
	OpCheckHappyHour = "check_happy_hour"
	OpCloseTab       = "close_tab"
)

// Operations lists the operations the dialogue layer should offer in this
// stage.
func (s Stage) Operations() []string {
	switch s {
	case StageGreeting:
		return []string{OpAddDrink, OpCheckHappyHour}
	case StageTakingOrder:
		return []string{OpAddDrink, OpRemoveDrink, OpReviewTab, OpCheckHappyHour}
	case StageClosingTab:
		return []string{OpCloseTab, OpReviewTab}
	case StageTabClosed:
		return nil
	default:
		return nil
	}
}

// Next returns the stage the conversation advances to.
func (s Stage) Next() Stage {
	switch s {
	case StageGreeting:
		return StageTakingOrder
	case StageTakingOrder:
		return StageClosingTab
	case StageClosingTab:
		return StageTabClosed
	case StageTabClosed:
		return StageGreeting
	default:
		return StageGreeting
	}
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageGreeting, StageTakingOrder, StageClosingTab, StageTabClosed:
		return true
	}
	return false
}
