//go:build !android

package game

// ensureStorageDir 桌面和浏览器上 gdata 自己创建存储位置
func ensureStorageDir() error {
	return nil
}
