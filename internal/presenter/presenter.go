package presenter

import (
	"fmt"
	"io"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

const separator = "-------------------------------------------------------"

// Presenter renders employee listings as a fixed-width table.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Render writes the labelled listing to the output stream. Column layout:
// ID and the text columns left-aligned, salary prefixed with "$" and printed
// with two decimal places. An empty listing prints a single not-found line.
func (p *Presenter) Render(label string, employees []models.Employee) {
	fmt.Fprintf(p.out, "\n----- %s -----\n", label)
	fmt.Fprintf(p.out, "%-5s %-20s %-20s %-10s\n", "ID", "NAME", "POSITION", "SALARY")
	fmt.Fprintln(p.out, separator)

	if len(employees) == 0 {
		fmt.Fprintln(p.out, "No employees found.")
	}

	for _, emp := range employees {
		fmt.Fprintf(p.out, "%-5d %-20s %-20s $%-10.2f\n", emp.ID, emp.Name, emp.Position, emp.Salary)
	}

	fmt.Fprintln(p.out, separator)
}
