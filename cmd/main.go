package main

import (
	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/routes"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
