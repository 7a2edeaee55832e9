package notifier

import (
	"testing"

	"rewards-recognition-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func approvedNomination() *models.Nomination {
	return &models.Nomination{
		Nominator:   &models.User{Name: "Jordan Lee", Email: "jordan@example.com"},
		Nominee:     &models.User{Name: "Sam Rivera", Email: "sam@example.com"},
		Category:    &models.Category{Name: "Innovation"},
		YearQuarter: &models.YearQuarter{Year: 2026, Quarter: 2},
	}
}

func TestNominatorBodyNamesNomineeCategoryAndPeriod(t *testing.T) {
	body := nominatorBody(approvedNomination())

	assert.Contains(t, body, "Sam Rivera")
	assert.Contains(t, body, "Innovation")
	assert.Contains(t, body, "2026 Q2")
}

func TestNomineeBodyNamesNomineeCategoryAndPeriod(t *testing.T) {
	body := nomineeBody(approvedNomination())

	assert.Contains(t, body, "Congratulations Sam Rivera!")
	assert.Contains(t, body, "Innovation")
	assert.Contains(t, body, "2026 Q2")
}

func TestBodiesTolerateMissingAssociations(t *testing.T) {
	bare := &models.Nomination{}

	assert.Contains(t, nominatorBody(bare), "your nominee")
	assert.NotContains(t, nominatorBody(bare), "category")
	assert.Contains(t, nomineeBody(bare), "Congratulations!")
}

func TestBodiesEscapeNames(t *testing.T) {
	nomination := approvedNomination()
	nomination.Nominee.Name = "<script>alert(1)</script>"

	assert.NotContains(t, nominatorBody(nomination), "<script>")
	assert.NotContains(t, nomineeBody(nomination), "<script>")
}
