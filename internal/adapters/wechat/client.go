// Package wechat implements the outbound WeChat mini-program collaborators:
// the jscode2session credential exchange and the encrypted profile payload
// decryption.
package wechat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/core/domain"
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
)

const jscode2sessionURL = "https://api.weixin.qq.com/sns/jscode2session"

type Client struct {
	appID      string
	appSecret  string
	httpClient *http.Client
}

func NewClient(appID, appSecret string) *Client {
	return &Client{
		appID:     appID,
		appSecret: appSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ portssvc.WxBridge = (*Client)(nil)

// Jscode2Session exchanges the mini-program login code for a session key and
// openid. Upstream failures surface as CodeCustom so the mobile client can
// branch on them.
func (c *Client) Jscode2Session(ctx context.Context, code string) (*domain.WxSession, error) {
	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("secret", c.appSecret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jscode2sessionURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build jscode2session request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCustom, fmt.Errorf("jscode2session request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrap(apperrors.CodeCustom, fmt.Errorf("jscode2session returned status %s", resp.Status))
	}

	var session domain.WxSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCustom, fmt.Errorf("failed to decode jscode2session response: %w", err))
	}
	// WeChat reports errors in the body with HTTP 200.
	if session.ErrCode != 0 {
		return nil, apperrors.Wrap(apperrors.CodeCustom, fmt.Errorf("jscode2session errcode %d: %s", session.ErrCode, session.ErrMsg))
	}
	if session.SessionKey == "" || session.OpenID == "" {
		return nil, apperrors.New(apperrors.CodeCustom)
	}
	return &session, nil
}
