package tokenpocket

import (
	"github.com/skip2/go-qrcode"
	"moff.io/ual-tokenpocket/pkg/errors"
)

const defaultQRCodeSize = 256

// OnboardingQRCode 返回引导下载地址的二维码 PNG，供桌面端用户用手机扫码安装钱包
func (a *Authenticator) OnboardingQRCode(size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRCodeSize
	}
	png, err := qrcode.Encode(a.opts.OnboardingLink, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Wrap(err, "encode onboarding qr code")
	}
	return png, nil
}
