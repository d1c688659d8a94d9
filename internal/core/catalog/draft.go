package catalog

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Draft is the client-side input for creating or updating a product.
// Validation happens here, before dispatch; the stores never see an
// invalid draft.
type Draft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Images      []string `json:"images,omitempty"`
}

// Validate checks the draft against the catalog's input constraints.
func (d Draft) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(d.Name) == "" {
		errs = errs.Append("name", fmt.Errorf("product name is required"))
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = errs.Append("description", fmt.Errorf("description is required"))
	}
	if d.Price <= 0 {
		errs = errs.Append("price", fmt.Errorf("price must be greater than 0"))
	}
	if d.Stock < 0 {
		errs = errs.Append("stock", fmt.Errorf("stock must be 0 or greater"))
	}
	if strings.TrimSpace(d.Category) == "" {
		errs = errs.Append("category", fmt.Errorf("category is required"))
	}

	return errs.ToError()
}
