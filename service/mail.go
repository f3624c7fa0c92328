package service

import (
	"fmt"

	"tradeverse/config"
	"tradeverse/pkg/log"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var _ IMailService = (*MailService)(nil)

type IMailService interface {
	SendVerifyMail(email string, username string, token string)
}

type MailService struct {
	Config *config.Config
}

// SendVerifyMail 发送验证邮件。邮件是可选副作用，失败只记 warning，
// 不会让注册流程回滚。
func (s *MailService) SendVerifyMail(email string, username string, token string) {
	conf := s.Config.Mail
	if conf == nil || !conf.Enabled {
		return
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", conf.BaseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", conf.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Verify your TradeVerse account")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Click the link below to verify your email:</p><p><a href=%q>%s</a></p>",
		username, link, link,
	))

	d := gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password)
	if err := d.DialAndSend(m); err != nil {
		log.L.Warn("send verify mail failed",
			zap.String("email", email),
			zap.Error(err))
	}
}
