package bootstrap

import (
	"log"

	"github.com/07piyush/wardrobeai/mongo"
	"github.com/07piyush/wardrobeai/storage"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
	Store storage.ObjectStore
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	store, err := storage.NewDiskStore(app.Env.StorageRoot, app.Env.StorageBaseURL)
	if err != nil {
		log.Fatal("object store can't be initialized: ", err)
	}
	app.Store = store
	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
