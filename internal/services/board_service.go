package services

import "dealdesk/internal/models"

// BoardColumn is one stage of the pipeline board.
type BoardColumn struct {
	Stage models.StageInfo `json:"stage"`
	Count int              `json:"count"`
	Value float64          `json:"value"`
	Deals []models.Deal    `json:"deals"`
}

// Board is the pipeline grouped by stage in catalog order.
type Board struct {
	Columns    []BoardColumn `json:"columns"`
	TotalCount int           `json:"totalCount"`
	TotalValue float64       `json:"totalValue"`
}

type BoardService struct {
	Deals *DealService
}

func NewBoardService(deals *DealService) *BoardService {
	return &BoardService{Deals: deals}
}

// GetBoard groups the deals matching filter. Every stage gets a column, empty or not.
func (s *BoardService) GetBoard(filter models.DealFilter) Board {
	stages := models.PipelineStages()
	board := Board{Columns: make([]BoardColumn, len(stages))}
	for i, st := range stages {
		board.Columns[i] = BoardColumn{Stage: st, Deals: []models.Deal{}}
	}
	for _, d := range s.Deals.List(filter) {
		i := models.StageIndex(d.Stage)
		if i < 0 {
			continue
		}
		col := &board.Columns[i]
		col.Deals = append(col.Deals, d)
		col.Count++
		col.Value += d.Value
		board.TotalCount++
		board.TotalValue += d.Value
	}
	return board
}
