package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

// touchScript runs the whole read-modify-write of a session atomically.
//
//	KEYS[1]  conversation key
//	ARGV[1]  encoded seed message
//	ARGV[2]  ttl in milliseconds (0 keeps no expiry)
//	ARGV[3]  "1" when a missing key may be created
//	ARGV[4:] encoded messages to append
//
// A missing key that may not be created returns nil. Otherwise the key is
// seeded if absent, the messages are appended, the expiry is slid forward and
// the full list is returned.
var touchScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	if ARGV[3] ~= '1' then
		return false
	end
	redis.call('RPUSH', KEYS[1], ARGV[1])
end
if #ARGV > 3 then
	redis.call('RPUSH', KEYS[1], unpack(ARGV, 4))
end
local ttl = tonumber(ARGV[2])
if ttl > 0 then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return redis.call('LRANGE', KEYS[1], 0, -1)
`)

// RedisConversationRepo stores each session as a Redis list of JSON encoded
// messages. Every read or write slides the key expiry forward by ttl, so idle
// sessions disappear on their own.
type RedisConversationRepo struct {
	client *redis.Client
	seed   string
	ttl    time.Duration
}

func NewRedisConversationRepo(client *redis.Client, systemPrompt string, ttl time.Duration) *RedisConversationRepo {
	return &RedisConversationRepo{client: client, seed: systemPrompt, ttl: ttl}
}

func conversationKey(sessionID string) string {
	return fmt.Sprintf("conversation:%s", sessionID)
}

func (r *RedisConversationRepo) Create(ctx context.Context) (string, error) {
	id := newSessionID()
	if _, err := r.touch(ctx, id, true, nil); err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}
	return id, nil
}

func (r *RedisConversationRepo) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	msgs, err := r.touch(ctx, sessionID, sessionID == DefaultSessionID, nil)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}
	return msgs, nil
}

// Append adds msgs to the end of the session and returns the full history.
// A session that expired or was deleted is not recreated, except the default
// one which is reseeded before the append.
func (r *RedisConversationRepo) Append(ctx context.Context, sessionID string, msgs ...models.Message) ([]models.Message, error) {
	history, err := r.touch(ctx, sessionID, sessionID == DefaultSessionID, msgs)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to append to conversation: %w", err)
	}
	return history, nil
}

func (r *RedisConversationRepo) Delete(ctx context.Context, sessionID string) error {
	n, err := r.client.Del(ctx, conversationKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisConversationRepo) touch(ctx context.Context, sessionID string, create bool, msgs []models.Message) ([]models.Message, error) {
	seed, err := encodeMessages([]models.Message{{Role: models.RoleSystem, Content: r.seed}})
	if err != nil {
		return nil, err
	}
	vals, err := encodeMessages(msgs)
	if err != nil {
		return nil, err
	}

	createFlag := "0"
	if create {
		createFlag = "1"
	}
	args := make([]interface{}, 0, 3+len(vals))
	args = append(args, seed[0], strconv.FormatInt(r.ttl.Milliseconds(), 10), createFlag)
	args = append(args, vals...)

	raw, err := touchScript.Run(ctx, r.client, []string{conversationKey(sessionID)}, args...).StringSlice()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeMessages(raw)
}

func encodeMessages(msgs []models.Message) ([]interface{}, error) {
	vals := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to encode message: %w", err)
		}
		vals = append(vals, string(data))
	}
	return vals, nil
}

func decodeMessages(vals []string) ([]models.Message, error) {
	msgs := make([]models.Message, 0, len(vals))
	for _, v := range vals {
		var m models.Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
