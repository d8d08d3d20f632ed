package presenter_test

import (
	"bytes"
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/presenter"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pres := presenter.NewPresenter(&buf)

	pres.Render("EMPLOYEE LIST", []models.Employee{
		{ID: 1, Name: "Rinku Singh", Position: "Software Developer", Salary: 85000.0},
		{ID: 2, Name: "Sai Gill", Position: "Project Manager", Salary: 95000.0},
	})

	output := buf.String()

	assert.Contains(t, output, "----- EMPLOYEE LIST -----")
	assert.Contains(t, output, "ID    NAME                 POSITION             SALARY")
	assert.Contains(t, output, "1     Rinku Singh          Software Developer   $85000.00")
	assert.Contains(t, output, "2     Sai Gill             Project Manager      $95000.00")
	assert.NotContains(t, output, "No employees found.")
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pres := presenter.NewPresenter(&buf)

	pres.Render("EMPLOYEE LIST", nil)

	assert.Contains(t, buf.String(), "No employees found.")
}
