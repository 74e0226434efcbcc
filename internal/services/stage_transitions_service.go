package services

import "dealdesk/internal/models"

// StageSuggestion is one move the dashboard offers for a deal.
type StageSuggestion struct {
	To    models.Stage `json:"to"`
	Label string       `json:"label"`
}

// DealTransitions lists, per stage, the moves offered as buttons: the next
// stage in catalog order plus both closing stages. MoveStage only consults it
// in strict mode.
var DealTransitions = buildDealTransitions()

func buildDealTransitions() map[models.Stage]map[models.Stage]bool {
	stages := models.PipelineStages()
	table := make(map[models.Stage]map[models.Stage]bool, len(stages))
	for i, from := range stages {
		nexts := map[models.Stage]bool{}
		for j, to := range stages {
			if to.ID == from.ID {
				continue
			}
			if j == i+1 || to.ID.IsTerminal() {
				nexts[to.ID] = true
			}
		}
		table[from.ID] = nexts
	}
	return table
}

func canTransition(current, to models.Stage, table map[models.Stage]map[models.Stage]bool) bool {
	if current == to {
		return true
	}
	nexts, ok := table[current]
	if !ok {
		return false
	}
	return nexts[to]
}

// SuggestedStages returns the offered moves for a deal in stage current, in catalog order.
// Unknown stages get no suggestions.
func SuggestedStages(current models.Stage) []StageSuggestion {
	nexts := DealTransitions[current]
	if len(nexts) == 0 {
		return []StageSuggestion{}
	}
	next := models.StageIndex(current) + 1
	out := make([]StageSuggestion, 0, len(nexts))
	for i, st := range models.PipelineStages() {
		if !nexts[st.ID] {
			continue
		}
		out = append(out, StageSuggestion{To: st.ID, Label: suggestionLabel(st, i == next)})
	}
	return out
}

func suggestionLabel(st models.StageInfo, adjacent bool) string {
	switch {
	case adjacent:
		return "Move to " + st.Name
	case st.ID == models.StageClosed:
		return "Mark Won"
	default:
		return "Mark Lost"
	}
}
