package main

import "github.com/startup-insights/insightctl/cmd/insightctl"

func main() { insightctl.Execute() }
