package v1

import (
	"net/http"
	"physiowell-web/internal/delivery/http/view"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	renderer *view.Renderer
}

// NewPageHandler registers the informational pages and the two form pages
func NewPageHandler(public *gin.RouterGroup, renderer *view.Renderer) {
	handler := &PageHandler{renderer: renderer}

	public.GET("/", handler.page("index.html", "Home"))
	public.GET("/about", handler.page("about.html", "About Us"))
	public.GET("/services", handler.page("services.html", "Our Services"))
	public.GET("/contact", handler.page("contact.html", "Contact Us"))
	public.GET("/book-appointment", handler.BookAppointment)
}

func (h *PageHandler) page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderer.HTML(c, http.StatusOK, name, gin.H{"Title": title})
	}
}

// BookAppointment renders the booking form; past dates are disabled in the picker.
func (h *PageHandler) BookAppointment(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "book_appointment.html", gin.H{
		"Title":     "Book an Appointment",
		"TodayDate": h.renderer.Today(),
	})
}
