package models

import "gorm.io/gorm"

// Migrate 建表，开发环境和测试用
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Users{},
		&UserStats{},
		&UserBadge{},
		&Category{},
		&Post{},
		&PostStats{},
		&Comment{},
		&PostLike{},
		&PostBookmark{},
		&UserFollow{},
		&ReadingList{},
		&ReadingListPost{},
		&PostTemplate{},
		&Activity{},
	)
}
