package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/base64"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

var ErrInvalidImage = failure.New(http.StatusBadRequest, "Invalid image", "The image must be a base64 encoded png or jpeg data URI.")

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// InvalidateCaches drops cached listings and the given rooms. Booking flows call it after
// changing a room status.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, ids ...string) {
	for _, id := range ids {
		if err := redisCache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Str("room_id", id).Msg("failed to delete room from cache")
		}
	}

	shared.InvalidateCaches(ctx, redisCache, cacheGetAllRoom, cacheCountRoom)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureNumberFree(ctx, req.Number); err != nil {
		return res, err
	}

	imageURL, objectName, err := s.uploadDataURI(ctx, req.Image)
	if err != nil {
		return res, err
	}

	room := req.ToModel(shared.Actor(ctx), imageURL)

	if err = s.repo.Insert(ctx, room); err != nil {
		s.deleteObject(ctx, objectName)

		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, model.ErrRoomNumberTaken
		}

		log.Error().Err(err).Int("number", req.Number).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	log.Info().Str("room_id", room.ID).Int("number", room.Number).Msg("room created")

	res.FromModel(room)

	go InvalidateCaches(context.WithoutCancel(ctx), s.cache)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, model.ErrEmptyUpdate
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Number != nil && *req.Number != current.Number {
		if err = s.ensureNumberFree(ctx, *req.Number); err != nil {
			return res, err
		}
	}

	imageURL, objectName, err := s.uploadDataURI(ctx, req.Image)
	if err != nil {
		return res, err
	}

	update := req.ToUpdate(imageURL)

	if err = s.repo.Update(ctx, shared.TransformFields(update, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		s.deleteObject(ctx, objectName)

		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, model.ErrRoomNumberTaken
		}

		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	if imageURL != constant.Empty {
		s.deleteImage(ctx, current.ImageURL)
	}

	res.FromModel(update.Apply(current))

	go InvalidateCaches(context.WithoutCancel(ctx), s.cache, id)

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	update := dto.ImageUpdate{ImageURL: url}

	if err = s.repo.Update(ctx, shared.TransformFields(update, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		s.deleteImage(ctx, url)

		log.Error().Err(err).Str("room_id", id).Msg("failed to save room image")

		return res, fmt.Errorf("failed to save room image: %w", err)
	}

	s.deleteImage(ctx, current.ImageURL)

	current.ImageURL = url
	res.FromModel(current)

	go InvalidateCaches(context.WithoutCancel(ctx), s.cache, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.repo.HasBookings(ctx, id, bookingModel.ActiveStatuses)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to check room bookings")

		return fmt.Errorf("failed to check room bookings: %w", err)
	}

	if active {
		return model.ErrRoomHasActiveBookings
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return model.ErrRoomHasHistory
		}

		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.deleteImage(ctx, current.ImageURL)

	log.Info().Str("room_id", id).Int("number", current.Number).Msg("room deleted")

	go InvalidateCaches(context.WithoutCancel(ctx), s.cache, id)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, model.ErrRoomNotFound
	}

	return room, nil
}

func (s *serviceImpl) ensureNumberFree(ctx context.Context, number int) error {
	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldNumber, Value: number, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Int("number", number).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return model.ErrRoomNumberTaken
	}

	return nil
}

// uploadDataURI stores a base64 data URI image and returns its public URL and object name.
func (s *serviceImpl) uploadDataURI(ctx context.Context, image string) (string, string, error) {
	if image == constant.Empty {
		return constant.Empty, constant.Empty, nil
	}

	contentType, data, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, constant.Empty, ErrInvalidImage
	}

	fileName := uuid.NewString() + "." + strings.TrimPrefix(contentType, "image/")

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, model.EntityName + "/" + fileName, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	s.deleteObject(ctx, s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, url))
}

func (s *serviceImpl) deleteObject(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, constant.Empty, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to delete room image")
	}
}
