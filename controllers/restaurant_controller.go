package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/resp"
	"github.com/Chandu5342/RestaurntBackend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: svc}
}

type PendingOwner struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PendingRestaurantResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Status    string        `json:"status"`
	Approved  bool          `json:"approved"`
	Logo      *entity.Image `json:"logo,omitempty"`
	CreatedAt string        `json:"createdAt"`
	Owner     PendingOwner  `json:"owner"`
}

// GET /restaurants/pending — the super-admin review queue.
func (ctl *RestaurantController) Pending(c *gin.Context) {
	rests, err := ctl.Service.Pending()
	if err != nil {
		resp.ServerError(c, "Failed to load pending restaurants")
		return
	}

	out := make([]PendingRestaurantResponse, 0, len(rests))
	for _, r := range rests {
		item := PendingRestaurantResponse{
			ID:        r.ID,
			Name:      r.Name,
			Address:   r.Address,
			Status:    r.Status,
			Approved:  r.Approved,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
			Owner: PendingOwner{
				ID:    r.Owner.ID,
				Name:  r.Owner.Name,
				Email: r.Owner.Email,
			},
		}
		if !r.Logo.Empty() {
			logo := r.Logo
			item.Logo = &logo
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, out)
}

// POST /restaurants/:id/approve
func (ctl *RestaurantController) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "Not found")
		return
	}

	if _, err := ctl.Service.Approve(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}

	resp.Message(c, http.StatusOK, "Restaurant approved")
}
