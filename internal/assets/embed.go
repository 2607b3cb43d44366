package assets

import "embed"

//go:embed yt-subs-dl.example.yaml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "yt-subs-dl.example.yaml"
