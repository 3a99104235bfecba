package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/service"
)

//go:embed templates/form.html
var templatesFS embed.FS

const formTemplateName = "form.html"

// LabelEndpoint is the path the form posts to.
const LabelEndpoint = "/api/label"

// formAddress labels one address fieldset on the form.
type formAddress struct {
	Key   string
	Title string
}

// formValues is the JSON shape the form script loads into its inputs.
type formValues struct {
	FromAddress *dto.AddressInput `json:"fromAddress,omitempty"`
	ToAddress   *dto.AddressInput `json:"toAddress,omitempty"`
	Parcel      *dto.ParcelInput  `json:"parcel"`
}

// FormPage is the data rendered into the label form.
type FormPage struct {
	Title         string
	Endpoint      string
	FallbackError string
	AuthRequired  bool
	Addresses     []formAddress
	Defaults      formValues
	Sample        formValues
}

// FormHandler serves the label form.
type FormHandler struct {
	page FormPage
}

// NewFormHandler creates a FormHandler. authRequired adds an API key input.
func NewFormHandler(authRequired bool) *FormHandler {
	defaultParcel := dto.DefaultParcel
	sample := dto.SampleRequest()

	return &FormHandler{
		page: FormPage{
			Title:         "Generate a shipping label",
			Endpoint:      LabelEndpoint,
			FallbackError: service.FallbackErrorMessage,
			AuthRequired:  authRequired,
			Addresses: []formAddress{
				{Key: "from", Title: "From address"},
				{Key: "to", Title: "Destination address"},
			},
			Defaults: formValues{Parcel: &defaultParcel},
			Sample: formValues{
				FromAddress: sample.FromAddress,
				ToAddress:   sample.ToAddress,
				Parcel:      sample.Parcel,
			},
		},
	}
}

// FormTemplates parses the embedded HTML templates.
func FormTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/"+formTemplateName))
}

// Register registers the form route on the router. The router must have
// the templates from FormTemplates loaded.
func (h *FormHandler) Register(router *gin.Engine) {
	router.GET("/", h.Show)
}

// Show renders the label form.
//
// @Summary     Label form
// @Description Single page form that collects two addresses and a parcel and posts them to /api/label.
// @Tags        Labels
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [get]
func (h *FormHandler) Show(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, formTemplateName, h.page)
}
