package services

import (
	"context"
	"strings"
	"time"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{DB: db, log: log.Named("users")}
}

type CreateUserInput struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
	EmployeeID    string `json:"employeeId"`
	JoiningDate   string `json:"joiningDate"`
}

type UpdateUserInput struct {
	FullName      *string `json:"fullName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Role          *string `json:"role"`
	IsActive      *bool   `json:"isActive"`
	IDProofType   *string `json:"idProofType"`
	IDProofNumber *string `json:"idProofNumber"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func presence(v string) string {
	if v == "" {
		return "missing"
	}
	return "provided"
}

func (s *UserService) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	var users []models.User
	if err := f.Apply(s.DB.WithContext(ctx)).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if !models.IsValidID(id) {
		return u, notFound("User not found")
	}
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if isRecordNotFound(err) {
		return u, notFound("User not found")
	}
	if err != nil {
		return u, errors.Wrapf(err, "load user %s", id)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return models.User{}, &Error{
			Kind: ErrValidation,
			Msg:  "Missing required fields",
			Details: map[string]string{
				"username": presence(in.Username),
				"email":    presence(in.Email),
				"password": presence(in.Password),
				"role":     presence(in.Role),
			},
		}
	}
	if !models.IsValidRole(in.Role) {
		return models.User{}, invalidf("Invalid role: %s", in.Role)
	}
	if in.IDProofType != "" && !models.IsValidIDProofType(in.IDProofType) {
		return models.User{}, invalidf("Invalid idProofType: %s", in.IDProofType)
	}

	joining := time.Now().UTC()
	if in.JoiningDate != "" {
		t, err := utils.ParseDate(in.JoiningDate)
		if err != nil {
			return models.User{}, invalidf("Invalid joiningDate: %s", in.JoiningDate)
		}
		joining = t
	}

	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", in.Email, in.Username).
		Count(&existing).Error; err != nil {
		return models.User{}, errors.Wrap(err, "check existing user")
	}
	if existing > 0 {
		return models.User{}, conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "hash password")
	}

	user := models.User{
		Username:      in.Username,
		Email:         in.Email,
		Password:      string(hash),
		Role:          in.Role,
		FullName:      in.FullName,
		Phone:         in.Phone,
		Address:       in.Address,
		IDProofType:   in.IDProofType,
		IDProofNumber: in.IDProofNumber,
		EmployeeID:    in.EmployeeID,
		JoiningDate:   &joining,
		IsActive:      true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return models.User{}, conflict("User already exists")
		}
		return models.User{}, errors.Wrap(err, "create user")
	}

	s.log.Info("user created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.User{}, err
	}

	updates := map[string]interface{}{}
	if in.FullName != nil && *in.FullName != "" {
		updates["full_name"] = *in.FullName
	}
	if in.Email != nil && *in.Email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil && *in.Phone != "" {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Role != nil && *in.Role != "" {
		if !models.IsValidRole(*in.Role) {
			return models.User{}, invalidf("Invalid role: %s", *in.Role)
		}
		updates["role"] = *in.Role
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.IDProofType != nil && *in.IDProofType != "" {
		if !models.IsValidIDProofType(*in.IDProofType) {
			return models.User{}, invalidf("Invalid idProofType: %s", *in.IDProofType)
		}
		updates["id_proof_type"] = *in.IDProofType
	}
	if in.IDProofNumber != nil && *in.IDProofNumber != "" {
		updates["id_proof_number"] = *in.IDProofNumber
	}

	if len(updates) > 0 {
		err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
		if isDuplicateKey(err) {
			return models.User{}, conflict("User already exists")
		}
		if err != nil {
			return models.User{}, errors.Wrap(err, "update user")
		}
	}
	return s.Get(ctx, id)
}

func (s *UserService) ChangePassword(ctx context.Context, id string, in ChangePasswordInput) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)) != nil {
		return invalid("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("password", string(hash)).Error; err != nil {
		return errors.Wrap(err, "update password")
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("User not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return notFound("User not found")
	}
	return nil
}
