package domain

// WxSession is the result of exchanging a mini-program login code with the
// WeChat jscode2session endpoint.
type WxSession struct {
	SessionKey string `json:"session_key"`
	OpenID     string `json:"openid"`
	UnionID    string `json:"unionid,omitempty"`
	ErrCode    int    `json:"errcode,omitempty"`
	ErrMsg     string `json:"errmsg,omitempty"`
}

// WxUserInfo is the profile carried inside the encrypted mini-program payload.
type WxUserInfo struct {
	OpenID    string      `json:"openId"`
	NickName  string      `json:"nickName"`
	City      string      `json:"city"`
	Province  string      `json:"province"`
	Country   string      `json:"country"`
	AvatarURL string      `json:"avatarUrl"`
	UnionID   string      `json:"unionId,omitempty"`
	Watermark WxWatermark `json:"watermark"`
}

// WxWatermark names the app the payload was encrypted for. A mismatch with the
// configured appid means the payload was produced for another application.
type WxWatermark struct {
	AppID     string  `json:"appid"`
	Timestamp float64 `json:"timestamp"`
}
