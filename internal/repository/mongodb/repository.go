package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

// Collection names, one table per entity kind.
const (
	collFarms         = "farms"
	collInventory     = "inventory"
	collMachines      = "machines"
	collHerdLots      = "herd_lots"
	collCollaborators = "collaborators"
)

// MongoDBRepository is the remote entity-store backing: whole-document list,
// upsert-by-id and delete-by-id per collection. No partial-field updates.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects and pings the remote store.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

func (r *MongoDBRepository) coll(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

func listAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func upsertByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc, opts); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", coll.Name(), id, err)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	if _, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("delete %s/%s: %w", coll.Name(), id, err)
	}
	return nil
}

func (r *MongoDBRepository) ListFarms(ctx context.Context) ([]models.Farm, error) {
	return listAll[models.Farm](ctx, r.coll(collFarms))
}

func (r *MongoDBRepository) UpsertFarm(ctx context.Context, farm models.Farm) error {
	return upsertByID(ctx, r.coll(collFarms), farm.ID, farm)
}

func (r *MongoDBRepository) DeleteFarm(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll(collFarms), id)
}

func (r *MongoDBRepository) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return listAll[models.InventoryItem](ctx, r.coll(collInventory))
}

func (r *MongoDBRepository) UpsertItem(ctx context.Context, item models.InventoryItem) error {
	return upsertByID(ctx, r.coll(collInventory), item.ID, item)
}

func (r *MongoDBRepository) DeleteItem(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll(collInventory), id)
}

func (r *MongoDBRepository) ListMachines(ctx context.Context) ([]models.Machine, error) {
	return listAll[models.Machine](ctx, r.coll(collMachines))
}

func (r *MongoDBRepository) UpsertMachine(ctx context.Context, machine models.Machine) error {
	return upsertByID(ctx, r.coll(collMachines), machine.ID, machine)
}

func (r *MongoDBRepository) DeleteMachine(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll(collMachines), id)
}

func (r *MongoDBRepository) ListHerdLots(ctx context.Context) ([]models.HerdLot, error) {
	return listAll[models.HerdLot](ctx, r.coll(collHerdLots))
}

func (r *MongoDBRepository) UpsertHerdLot(ctx context.Context, lot models.HerdLot) error {
	return upsertByID(ctx, r.coll(collHerdLots), lot.ID, lot)
}

func (r *MongoDBRepository) DeleteHerdLot(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll(collHerdLots), id)
}

func (r *MongoDBRepository) ListCollaborators(ctx context.Context) ([]models.Collaborator, error) {
	return listAll[models.Collaborator](ctx, r.coll(collCollaborators))
}

func (r *MongoDBRepository) UpsertCollaborator(ctx context.Context, collab models.Collaborator) error {
	return upsertByID(ctx, r.coll(collCollaborators), collab.ID, collab)
}

func (r *MongoDBRepository) DeleteCollaborator(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll(collCollaborators), id)
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
