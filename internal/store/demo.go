package store

import "playlist-organiser/internal/model"

// DemoTree is the sample library shown when no tree file is configured.
func DemoTree() model.Tree {
	return model.Tree{
		{
			ID: "folder-1", Kind: model.KindFolder, Title: "Folder 1",
			Children: []model.Node{
				{
					ID: "folder-2", Kind: model.KindFolder, Title: "Subfolder 1",
					Children: []model.Node{
						{ID: "playlist-1", Kind: model.KindPlaylist, Title: "Playlist 1"},
					},
				},
				{ID: "playlist-2", Kind: model.KindPlaylist, Title: "Playlist 2"},
			},
		},
		{
			ID: "folder-3", Kind: model.KindFolder, Title: "Folder 2",
			Children: []model.Node{
				{ID: "playlist-3", Kind: model.KindPlaylist, Title: "Playlist 3"},
			},
		},
		{
			ID: "folder-4", Kind: model.KindFolder, Title: "Folder 3",
			Children: []model.Node{
				{ID: "playlist-4", Kind: model.KindPlaylist, Title: "Playlist 4"},
			},
		},
	}
}
