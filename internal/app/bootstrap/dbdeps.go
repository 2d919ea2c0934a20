// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safispaces/safispaces/internal/app/system/mailer"
)

// DBDeps carries backend connections through the WAFFLE lifecycle.
//
// ConnectDB builds this struct, and WAFFLE passes it to EnsureSchema,
// Startup, BuildHandler, and Shutdown.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Mailer        *mailer.Mailer
}
