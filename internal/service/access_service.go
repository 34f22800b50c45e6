package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var ErrNoAccess = errors.New("无权访问该行程")

// AccessService 行程访问鉴权：每个行程作用域的读写操作之前都要过一次，
// 每次都是对成员表的新鲜读，跨请求不缓存。
type AccessService struct {
	memberRepo *repository.MemberRepository
}

func NewAccessService(memberRepo *repository.MemberRepository) *AccessService {
	return &AccessService{memberRepo: memberRepo}
}

// Check 查找 (trip, user) 的活跃成员行。查不到（从未加入或已移除/停用）返回 ErrNoAccess。
// 调用方把 ErrNoAccess 映射为 403，而不是 404：行程是否存在由路由单独判断。
func (s *AccessService) Check(tripID, userID int64) (*model.TripMember, error) {
	member, err := s.memberRepo.GetActive(tripID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAccess
		}
		return nil, err
	}
	return member, nil
}
