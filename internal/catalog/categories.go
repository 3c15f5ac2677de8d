// Package catalog bundles the builtin scenario set and the fixed category
// list shipped with the trainer.
package catalog

import "github.com/eslsoft/eqtrainer/internal/entity"

// Category IDs double as scenario id prefixes (work_001, emotion_002, ...).
const (
	CategoryWork      = "work"
	CategoryEmotion   = "emotion"
	CategoryFamily    = "family"
	CategoryAcademic  = "academic"
	CategorySocial    = "social"
	CategoryEmergency = "emergency"
	CategorySelf      = "self"
	CategoryUnwritten = "unwritten"
)

var baseCategories = []entity.Category{
	{ID: CategoryWork, Icon: "💼", Name: "职场场景"},
	{ID: CategoryEmotion, Icon: "❤️", Name: "情感场景"},
	{ID: CategoryFamily, Icon: "👨‍👩‍👧‍👦", Name: "家庭场景"},
	{ID: CategoryAcademic, Icon: "🎓", Name: "学术场景"},
	{ID: CategorySocial, Icon: "🤝", Name: "社交场景"},
	{ID: CategoryEmergency, Icon: "🚨", Name: "突发场景"},
	{ID: CategorySelf, Icon: "🤦‍♂️", Name: "自我闹事"},
	{ID: CategoryUnwritten, Icon: "🕶️", Name: "社会潜规则"},
}

// Base returns the fixed categories in display order.
func Base() []entity.Category {
	out := make([]entity.Category, len(baseCategories))
	copy(out, baseCategories)
	return out
}

// FavoritesCategory is prepended when the user has any favorites.
func FavoritesCategory() entity.Category {
	return entity.Category{ID: entity.CategoryFavorites, Icon: "⭐", Name: "收藏夹"}
}

// CustomCategory is appended when any custom scenarios exist.
func CustomCategory() entity.Category {
	return entity.Category{ID: entity.CategoryCustom, Icon: "✍️", Name: "我的题目"}
}
