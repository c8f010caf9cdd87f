package mongodb

import (
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// toObjectID converts an external hex id into the store's native id.
// Every filter by id goes through here; aggregation pipelines do no implicit conversion.
func toObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(repository.ErrInvalidID, "%q", id)
	}

	return oid, nil
}

// toObjectIDs converts a list of hex ids, failing on the first invalid one.
func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := toObjectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	return oids, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}

	return ids
}

// translateWriteError maps driver write failures to repository errors.
func translateWriteError(err error, details string) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(repository.ErrDuplicateKey, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
