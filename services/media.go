package services

import "github.com/Chandu5342/RestaurntBackend/entity"

// mediaOwner is the single destination for a registration image.
type mediaOwner int

const (
	mediaNone mediaOwner = iota
	mediaUser
	mediaRestaurant
)

// mediaTarget routes the image by role: admins brand their restaurant,
// other roles get a personal avatar. A registration that never sent a
// role value carries no image at all.
func mediaTarget(role entity.Role, rolePresent bool) mediaOwner {
	switch {
	case role == entity.RoleAdmin:
		return mediaRestaurant
	case rolePresent:
		return mediaUser
	default:
		return mediaNone
	}
}

func (m mediaOwner) folder() string {
	if m == mediaRestaurant {
		return "restaurant_logos"
	}
	return "avatars"
}
