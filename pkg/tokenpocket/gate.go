package tokenpocket

import "strings"

// mobileMarkers User-Agent 中出现任一即视为移动端
var mobileMarkers = []string{"iPhone", "iPad", "Mobile", "Android"}

// SupportsAllChains 链列表为空或包含任一不支持的链时返回 false
func (a *Authenticator) SupportsAllChains() bool {
	return a.opts.SupportedChains.SupportsAll(a.chains)
}

// IsMobile 根据 User-Agent 粗略判断是否运行在移动端，钱包接口只存在于 TokenPocket 的内置浏览器中
func (a *Authenticator) IsMobile() bool {
	if a.opts.UserAgent == nil {
		return false
	}
	return isMobileUserAgent(a.opts.UserAgent())
}

func isMobileUserAgent(ua string) bool {
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

func (a *Authenticator) ShouldRender() bool {
	return a.SupportsAllChains() && a.IsMobile()
}

// ShouldAutoLogin 只要展示就自动登录，因为展示本身已限定在 TokenPocket 内置浏览器中
func (a *Authenticator) ShouldAutoLogin() bool {
	return a.ShouldRender()
}
