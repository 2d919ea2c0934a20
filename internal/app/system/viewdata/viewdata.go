// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/safispaces/safispaces/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.New(r, "Page Title"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName   string
	FooterText string

	// Page context
	Title       string
	CurrentPath string

	// CSRF token for forms (use in hidden input field)
	CSRFToken string
}

// New creates a populated BaseVM for a page.
func New(r *http.Request, title string) BaseVM {
	return BaseVM{
		SiteName:    models.DefaultSiteName,
		FooterText:  models.DefaultFooterText,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}
