package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"onibook/config"
	"onibook/services/storage"
	"onibook/utils"
)

// TypeAttachmentSweep names the task that deletes an orphaned attachment: an
// upload whose booking lost the slot race and was never created.
const TypeAttachmentSweep = "attachment:sweep"

type sweepPayload struct {
	Ref string `json:"ref"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewSweepClient returns an asynq client for enqueueing sweep tasks.
func NewSweepClient() *asynq.Client {
	return asynq.NewClient(redisOpt())
}

// EnqueueAttachmentSweep schedules deletion of an orphaned attachment ref.
// Asynq retries the task if the storage backend is briefly unavailable.
func EnqueueAttachmentSweep(client *asynq.Client, ref string) error {
	payload, err := json.Marshal(sweepPayload{Ref: ref})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAttachmentSweep, payload)
	if _, err := client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue attachment sweep: %w", err)
	}
	return nil
}

// StartSweepWorker runs the asynq worker in the background.
func StartSweepWorker(storageSvc storage.StorageService) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAttachmentSweep, handleAttachmentSweep(storageSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting attachment sweep worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("attachment sweep worker stopped", zap.Error(err))
		}
	}()
}

func handleAttachmentSweep(storageSvc storage.StorageService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload sweepPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("bad sweep payload: %w", err)
		}
		if payload.Ref == "" {
			return nil
		}
		if err := storageSvc.DeleteFile(ctx, payload.Ref); err != nil {
			return err
		}
		utils.GetLogger().Info("swept orphaned attachment", zap.String("ref", payload.Ref))
		return nil
	}
}
