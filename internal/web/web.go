// Package web 内置的浏览器端图书列表页面
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Assets 静态资源(index.html、app.js、app.css)
func Assets() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// static目录随二进制一起编译,不会出现
		panic(err)
	}
	return sub
}

// IndexHTML 首页内容
func IndexHTML() ([]byte, error) {
	return fs.ReadFile(Assets(), "index.html")
}
