package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealdesk/internal/models"
	"dealdesk/internal/repositories"
)

// DealService is the pipeline store: every deal mutation goes through it.
type DealService struct {
	Repo *repositories.DealRepository

	// Strict rejects moves outside DealTransitions.
	Strict bool
	// Now and NewID are replaceable for tests.
	Now   func() time.Time
	NewID func() string
}

func NewDealService(repo *repositories.DealRepository, strict bool) *DealService {
	return &DealService{
		Repo:   repo,
		Strict: strict,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// List returns the deals matching filter in insertion order.
func (s *DealService) List(filter models.DealFilter) []models.Deal {
	needle := strings.ToLower(filter.Search)
	return s.Repo.List(func(d *models.Deal) bool {
		return matchesStage(d.Stage, filter.Stage) && matchesDealSearch(d, needle)
	})
}

func matchesStage(stage, want models.Stage) bool {
	return want == "" || want == models.StageAll || stage == want
}

func matchesDealSearch(d *models.Deal, needle string) bool {
	if needle == "" {
		return true
	}
	return containsFold(d.Name, needle) || containsFold(d.Company, needle) || containsFold(d.Contact, needle)
}

func (s *DealService) Get(id string) (*models.Deal, error) {
	deal, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, &NotFoundError{Kind: "deal", ID: id}
	}
	return deal, nil
}

// Add validates in and appends a new deal with a fresh id and today's createdAt.
func (s *DealService) Add(in models.DealInput) (*models.Deal, error) {
	v := &ValidationError{}
	deal := models.Deal{
		Name:    requiredText(v, "name", in.Name),
		Company: requiredText(v, "company", in.Company),
		Stage:   models.StageLead,
	}
	if in.Value == nil {
		v.add("value", "value is required")
	} else {
		deal.Value = parseAmount(v, "value", *in.Value)
	}
	if in.Contact != nil {
		deal.Contact = *in.Contact
	}
	if in.Stage != nil && *in.Stage != "" {
		deal.Stage = checkStage(v, *in.Stage)
	}
	deal.ExpectedCloseDate = today(s.Now)
	if in.ExpectedCloseDate != nil && strings.TrimSpace(*in.ExpectedCloseDate) != "" {
		deal.ExpectedCloseDate = parseDateField(v, "expectedCloseDate", *in.ExpectedCloseDate)
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	deal.ID = s.newID()
	deal.CreatedAt = today(s.Now)
	if err := s.Repo.Create(&deal); err != nil {
		return nil, fmt.Errorf("add deal: %w", err)
	}
	return &deal, nil
}

// Update merges the submitted fields of patch over the stored deal.
// id and createdAt never change.
func (s *DealService) Update(id string, patch models.DealInput) (*models.Deal, error) {
	deal, err := s.Repo.Update(id, func(d *models.Deal) error {
		return applyDealPatch(d, patch)
	})
	if err != nil {
		return nil, notFoundOr("deal", id, err)
	}
	return deal, nil
}

func applyDealPatch(d *models.Deal, patch models.DealInput) error {
	v := &ValidationError{}
	if patch.Name != nil {
		d.Name = requiredText(v, "name", patch.Name)
	}
	if patch.Company != nil {
		d.Company = requiredText(v, "company", patch.Company)
	}
	if patch.Contact != nil {
		d.Contact = *patch.Contact
	}
	if patch.Value != nil {
		d.Value = parseAmount(v, "value", *patch.Value)
	}
	if patch.Stage != nil {
		d.Stage = checkStage(v, *patch.Stage)
	}
	if patch.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = parseDateField(v, "expectedCloseDate", *patch.ExpectedCloseDate)
	}
	return v.orNil()
}

func checkStage(v *ValidationError, st models.Stage) models.Stage {
	if !models.IsStage(st) {
		v.add("stage", fmt.Sprintf("stage %q is not a pipeline stage", st))
	}
	return st
}

func (s *DealService) Remove(id string) error {
	return notFoundOr("deal", id, s.Repo.Delete(id))
}

// MoveStage sets the deal's stage. Any stage may follow any other unless Strict is set.
func (s *DealService) MoveStage(id string, to models.Stage) (*models.Deal, error) {
	deal, err := s.Repo.Update(id, func(d *models.Deal) error {
		if !models.IsStage(to) {
			return invalidField("stage", fmt.Sprintf("stage %q is not a pipeline stage", to))
		}
		if s.Strict && !canTransition(d.Stage, to, DealTransitions) {
			return invalidField("stage", fmt.Sprintf("cannot move from %s to %s", d.Stage, to))
		}
		d.Stage = to
		return nil
	})
	if err != nil {
		return nil, notFoundOr("deal", id, err)
	}
	return deal, nil
}

// NextStages returns the suggested moves for the deal's current stage.
func (s *DealService) NextStages(id string) ([]StageSuggestion, error) {
	deal, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return SuggestedStages(deal.Stage), nil
}

func (s *DealService) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}
