// Package assets 嵌入游戏使用的图片、音效和配置文件
//
// 放在独立包中，使 Ebitengine 前端和终端前端（cmd/snake-term）都能引用同一份资源。
// 其他包不直接读取 FS，而是通过 pkg/embedded 访问。
package assets

import "embed"

// FS 包含 images/、sounds/ 和 config/ 目录
//
//go:embed images sounds config
var FS embed.FS
