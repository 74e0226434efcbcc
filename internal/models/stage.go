package models

// Stage identifies a pipeline stage.
type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosed      Stage = "closed"
	StageLost        Stage = "lost"

	// StageAll is the list filter sentinel, never a deal's stage.
	StageAll Stage = "all"
)

// StageInfo is the display metadata of a stage. Color is a presentation tag.
type StageInfo struct {
	ID    Stage  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

var pipelineStages = []StageInfo{
	{ID: StageLead, Name: "Lead", Color: "bg-blue-500"},
	{ID: StageQualified, Name: "Qualified", Color: "bg-purple-500"},
	{ID: StageProposal, Name: "Proposal", Color: "bg-yellow-500"},
	{ID: StageNegotiation, Name: "Negotiation", Color: "bg-orange-500"},
	{ID: StageClosed, Name: "Closed Won", Color: "bg-green-500"},
	{ID: StageLost, Name: "Closed Lost", Color: "bg-red-500"},
}

// PipelineStages returns the ordered stage catalog. The slice is a copy.
func PipelineStages() []StageInfo {
	out := make([]StageInfo, len(pipelineStages))
	copy(out, pipelineStages)
	return out
}

// IsStage reports whether s is a member of the catalog.
func IsStage(s Stage) bool {
	return StageIndex(s) >= 0
}

// StageIndex returns the catalog position of s, or -1.
func StageIndex(s Stage) int {
	for i, st := range pipelineStages {
		if st.ID == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether s is one of the closing stages.
func (s Stage) IsTerminal() bool {
	return s == StageClosed || s == StageLost
}

// Info returns the catalog entry for s.
func (s Stage) Info() (StageInfo, bool) {
	i := StageIndex(s)
	if i < 0 {
		return StageInfo{}, false
	}
	return pipelineStages[i], true
}
