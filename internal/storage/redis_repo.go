package storage

import (
	"github.com/go-redis/redis"
)

type RedisRepo struct {
	client *redis.Client
	prefix string
}

var _ Storage = (*RedisRepo)(nil)

func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	return &RedisRepo{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisRepo) GetItem(key string) ([]byte, error) {
	value, err := r.client.Get(r.prefix + key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (r *RedisRepo) SetItem(key string, value []byte) error {
	return r.client.Set(r.prefix+key, value, 0).Err()
}

func (r *RedisRepo) RemoveItem(key string) error {
	return r.client.Del(r.prefix + key).Err()
}
