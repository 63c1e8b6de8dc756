package products

import (
	"context"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/product-catalog/pkg/util"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

// productDocument mirrors the JSON record layout. Prices are stored as doubles.
type productDocument struct {
	Name        string  `bson:"nome"`
	Description string  `bson:"descricao"`
	Price       float64 `bson:"preco"`
	ImageURL    string  `bson:"imagem"`
}

func (d productDocument) toModel() models.Product {
	return models.Product{
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		ImageURL:    d.ImageURL,
	}
}

type mongoSource struct {
	uri        string
	database   string
	collection string
}

func NewMongoSource(uri, database, collection string) Source {
	return &mongoSource{uri: uri, database: database, collection: collection}
}

func (s *mongoSource) Name() string {
	return "mongodb"
}

// Fetch connects, reads the whole collection in natural order and disconnects.
func (s *mongoSource) Fetch(ctx context.Context) ([]models.Product, error) {
	db, err := mongodb.NewConnection(ctx, s.uri, s.database)
	if err != nil {
		return nil, err
	}
	defer db.Close(context.WithoutCancel(ctx))

	docs, err := mongodb.NewRepository[productDocument](db.Database, s.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return util.ConvertList(docs, productDocument.toModel), nil
}
