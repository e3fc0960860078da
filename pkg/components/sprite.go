package components

// SpriteRole 贴图的逻辑角色
// 渲染层只按角色引用贴图，具体图片由前端决定
type SpriteRole int

const (
	SpriteFood SpriteRole = iota
	SpriteHead
	SpriteBody
	SpriteTail
)

// ResourceID 返回 resources.yaml 中对应的图片资源ID
func (r SpriteRole) ResourceID() string {
	switch r {
	case SpriteFood:
		return "IMAGE_FOOD"
	case SpriteHead:
		return "IMAGE_SNAKE_HEAD"
	case SpriteBody:
		return "IMAGE_SNAKE_BODY"
	case SpriteTail:
		return "IMAGE_SNAKE_TAIL"
	}
	return ""
}

// AllSpriteRoles 全部贴图角色（用于预加载）
var AllSpriteRoles = []SpriteRole{SpriteFood, SpriteHead, SpriteBody, SpriteTail}
