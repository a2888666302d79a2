// Package twittertext 从短文本中提取 URL、@提及、@列表、#话题标签和 $股票标签
//
// 所有实体偏移量均以 UTF-16 code units 计数，与 Twitter API 一致。
// 需要按 Unicode code point 计数时使用 ToCodePoints。
//
// 核心功能：
//   - 提取实体并解决重叠（URL 优先于其中的 #/@）
//   - UTF-16 与 code point 偏移量互相转换
//   - 推文长度校验（短链接按固定长度计费）
//
// 主要 API：
//   - ExtractEntities(): 提取所有实体，按起点排序且互不重叠
//   - NewExtractor(): 自定义提取选项
//   - NewValidator(): 长度与格式校验
//
// 示例：
//
//	entities := twittertext.ExtractEntities("@jack check #golang at https://go.dev")
//	for _, e := range entities {
//	    fmt.Println(e.Type, e.Value, e.Start, e.End)
//	}
//
//	// 不提取无协议的 URL
//	x := twittertext.NewExtractor(twittertext.WithURLWithoutProtocol(false))
//	urls := x.ExtractURLs("example.com and https://go.dev")
package twittertext

// ExtractEntities extracts every entity kind using the default extractor.
func ExtractEntities(text string) []Entity {
	return DefaultExtractor().ExtractEntitiesWithIndices(text)
}

// ExtractURLs returns URL values using the default extractor.
func ExtractURLs(text string) []string {
	return DefaultExtractor().ExtractURLs(text)
}

// ExtractHashtags returns hashtag values using the default extractor.
func ExtractHashtags(text string) []string {
	return DefaultExtractor().ExtractHashtags(text)
}

// ExtractMentionedScreennames returns mentioned usernames using the default extractor.
func ExtractMentionedScreennames(text string) []string {
	return DefaultExtractor().ExtractMentionedScreennames(text)
}

// ExtractCashtags returns cashtag values using the default extractor.
func ExtractCashtags(text string) []string {
	return DefaultExtractor().ExtractCashtags(text)
}

// ExtractReplyScreenname returns the replied-to username using the default extractor.
func ExtractReplyScreenname(text string) (string, bool) {
	return DefaultExtractor().ExtractReplyScreenname(text)
}

// IsValidTweet validates text using the default validator.
func IsValidTweet(text string) bool {
	return DefaultValidator().IsValidTweet(text)
}

// TweetLength returns the weighted length of text using the default validator.
func TweetLength(text string) int {
	return DefaultValidator().TweetLength(text)
}
