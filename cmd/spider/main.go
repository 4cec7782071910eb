// cmd/spider/main.go
package main

import (
	"github.com/RunningMSN/SPIDER/internal/app"
	"github.com/RunningMSN/SPIDER/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
