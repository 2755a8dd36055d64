package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/api/route"
	"github.com/07piyush/wardrobeai/bootstrap"
)

func main() {
	app := bootstrap.App()
	defer app.CloseDBConnection()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, app.Store, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
