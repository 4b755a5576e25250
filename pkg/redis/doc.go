// Package redis provides the Redis connection helper backing the shared
// token store.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := tokenstore.NewRedisStore(client)
package redis
