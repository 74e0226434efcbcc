package models

// Deal is one record of the sales pipeline.
type Deal struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Company           string  `json:"company"`
	Contact           string  `json:"contact"`
	Value             float64 `json:"value"`
	Stage             Stage   `json:"stage"`
	ExpectedCloseDate Date    `json:"expectedCloseDate"`
	CreatedAt         Date    `json:"createdAt"`
}

// DealInput is the form payload for creating or patching a deal.
// A nil field means "not submitted".
type DealInput struct {
	Name              *string    `json:"name"`
	Company           *string    `json:"company"`
	Contact           *string    `json:"contact"`
	Value             *FormValue `json:"value"`
	Stage             *Stage     `json:"stage"`
	ExpectedCloseDate *string    `json:"expectedCloseDate"`
}

// DealFilter narrows the pipeline list. Empty Stage or StageAll matches every stage.
type DealFilter struct {
	Stage  Stage
	Search string
}
