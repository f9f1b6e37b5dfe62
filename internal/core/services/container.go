package services

import (
	portsrepo "github.com/cgcym1234/authserver/internal/core/ports/repositories"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/platform/config"
)

// NewServiceContainer wires every service against the repositories and the
// external collaborators.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.Container,
	mailer portssvc.Mailer,
	bridge portssvc.WxBridge,
) *portssvc.ServiceContainer {
	auth := NewAuthService(repos, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	verification := NewVerificationService(repos)
	user := NewUserService(repos, auth, verification, mailer, cfg.PublicBaseURL)
	wechat := NewWeChatService(bridge, repos, auth, cfg.WxAppID)

	return &portssvc.ServiceContainer{
		User:         user,
		Auth:         auth,
		Verification: verification,
		WeChat:       wechat,
	}
}
