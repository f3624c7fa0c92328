package utils

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/speps/go-hashids/v2"
)

// MtRand 生成指定范围内的随机数
func MtRand(min, max int) int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Intn(max-min+1) + min
}

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 16
	return hashids.NewWithData(hd)
}

// GenVerifyToken 生成邮箱验证 token（用户ID + 签发时间）
func GenVerifyToken(salt string, userID int64) string {
	h, err := newHashID(salt)
	if err != nil {
		return ""
	}
	token, _ := h.EncodeInt64([]int64{userID, time.Now().Unix()})
	return token
}

// DecodeVerifyToken 解析邮箱验证 token，返回用户ID和签发时间
func DecodeVerifyToken(salt string, token string) (int64, time.Time, error) {
	h, err := newHashID(salt)
	if err != nil {
		return 0, time.Time{}, err
	}
	nums, err := h.DecodeInt64WithError(token)
	if err != nil || len(nums) != 2 {
		return 0, time.Time{}, errors.New("token 无效")
	}
	return nums[0], time.Unix(nums[1], 0), nil
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// StripHTML 去除内容中的 HTML 标签
func StripHTML(content string) string {
	return htmlTagRe.ReplaceAllString(content, "")
}

// ReadingTime 按 200 字/分钟估算阅读时长（分钟），最少 1 分钟
func ReadingTime(content string) int {
	words := len(strings.Fields(StripHTML(content)))
	minutes := (words + 100) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
