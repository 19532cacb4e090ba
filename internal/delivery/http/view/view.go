package view

import (
	"net/http"
	"physiowell-web/pkg/flash"
	"time"

	"github.com/gin-gonic/gin"
)

// Renderer renders page templates with the data every page needs: site name,
// pending flash messages and the current year.
type Renderer struct {
	flashes  *flash.Store
	siteName string
	now      func() time.Time
}

func NewRenderer(flashes *flash.Store, siteName string) *Renderer {
	return &Renderer{
		flashes:  flashes,
		siteName: siteName,
		now:      time.Now,
	}
}

// HTML renders name. Messages pending in the flash cookie are shown first,
// followed by msgs.
func (r *Renderer) HTML(c *gin.Context, code int, name string, data gin.H, msgs ...flash.Message) {
	page := gin.H{
		"Title":    "",
		"SiteName": r.siteName,
		"Year":     r.now().Year(),
		"Flashes":  append(r.flashes.Pop(c), msgs...),
	}
	for k, v := range data {
		page[k] = v
	}
	c.HTML(code, name, page)
}

// ErrorPage renders the 404 page for 404 and the generic error page otherwise.
func (r *Renderer) ErrorPage(c *gin.Context, code int) {
	if code == http.StatusNotFound {
		r.HTML(c, code, "404.html", gin.H{"Title": "Page Not Found"})
		return
	}
	r.HTML(c, code, "500.html", gin.H{"Title": "Error"})
}

// Today is used for the minimum date on the booking form.
func (r *Renderer) Today() string {
	return r.now().Format("2006-01-02")
}
