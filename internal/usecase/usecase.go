package usecase

import "context"

type RecommendUC interface {
	RecommendSimilar(ctx context.Context, req *RecommendSimilarReq) (*RecommendRes, error)
	ChatbotRecommend(ctx context.Context, req *ChatbotRecommendReq) (*RecommendRes, error)
	HomepageRecommendations(ctx context.Context, topN int) (*RecommendRes, error)
}

type ChatbotUC interface {
	Reply(ctx context.Context, req *ChatReq) (*ChatRes, error)
}

type TrainUC interface {
	Train(ctx context.Context) (*TrainRes, error)
}

type ExportUC interface {
	Export(ctx context.Context) (int, error)
}
