package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var ErrEmailRequired = errors.New("邮箱不能为空")

type IdentityService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
}

func NewIdentityService(
	userRepo *repository.UserRepository,
	subRepo *repository.SubscriptionRepository,
) *IdentityService {
	return &IdentityService{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

// Resolve 把可信请求头中的邮箱解析为持久用户记录，首次出现时惰性创建。
// 已存在：无条件刷新 last_login_at；displayName 非空且与存量不同时一并更新。
// 不存在：插入用户行 + 一条默认订阅行（订阅行唯一键冲突视为成功）。
// 用户行插入撞唯一键说明并发首次请求输了竞态，回读赢家的行继续，两个请求都不失败。
func (s *IdentityService) Resolve(email, displayName string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	displayName = strings.TrimSpace(displayName)

	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return s.touch(user, displayName)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	user = &model.User{
		Email:       email,
		LastLoginAt: now,
	}
	if displayName != "" {
		user.DisplayName = &displayName
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, rerr := s.userRepo.GetByEmail(email)
			if rerr != nil {
				return nil, rerr
			}
			return s.touch(winner, displayName)
		}
		return nil, err
	}

	sub := &model.Subscription{
		UserID:   user.ID,
		Provider: "internal",
		Plan:     "free",
		Status:   "active",
	}
	if _, err := s.subRepo.CreateIfAbsent(sub); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *IdentityService) touch(user *model.User, displayName string) (*model.User, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"last_login_at": now,
	}
	if displayName != "" && (user.DisplayName == nil || *user.DisplayName != displayName) {
		updates["display_name"] = displayName
		user.DisplayName = &displayName
	}

	if err := s.userRepo.UpdateFields(user.ID, updates); err != nil {
		return nil, err
	}

	user.LastLoginAt = now
	return user, nil
}
